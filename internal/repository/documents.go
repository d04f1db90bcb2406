package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/agroconecta/marketplace-service/internal/dto"
)

// The builders below emit only the fields actually present in the request.
// Inserts store exactly what was sent; updates $set the sent fields and leave
// everything else untouched, so a partial update never erases stored data.

func registrationDocument(data dto.RegistrationRequest) bson.D {
	doc := bson.D{}
	if data.Name != nil {
		doc = append(doc, bson.E{Key: "nomeUsuario", Value: *data.Name})
	}
	if data.Phone != nil {
		doc = append(doc, bson.E{Key: "telefoneUsuario", Value: *data.Phone})
	}
	if data.Address != nil {
		doc = append(doc, bson.E{Key: "enderecoUsuario", Value: *data.Address})
	}
	if data.RegisteredAt != nil {
		doc = append(doc, bson.E{Key: "dataCadastroUsuario", Value: *data.RegisteredAt})
	}
	if data.Type != nil {
		doc = append(doc, bson.E{Key: "tipoUsuario", Value: *data.Type})
	}
	return doc
}

func productDocument(data dto.ProductRequest) bson.D {
	doc := bson.D{}
	if data.ProducerID != nil {
		doc = append(doc, bson.E{Key: "idProdutor", Value: *data.ProducerID})
	}
	if data.Name != nil {
		doc = append(doc, bson.E{Key: "nomeProduto", Value: *data.Name})
	}
	if data.Price != nil {
		doc = append(doc, bson.E{Key: "precoProduto", Value: *data.Price})
	}
	if data.Quantity != nil {
		doc = append(doc, bson.E{Key: "quantidadeProduto", Value: *data.Quantity})
	}
	if data.Unit != nil {
		doc = append(doc, bson.E{Key: "undMedida", Value: *data.Unit})
	}
	if data.CreatedAt != nil {
		doc = append(doc, bson.E{Key: "dataCriacaoProduto", Value: *data.CreatedAt})
	}
	if data.ProductionMode != nil {
		doc = append(doc, bson.E{Key: "modoProducao", Value: *data.ProductionMode})
	}
	if data.Category != nil {
		doc = append(doc, bson.E{Key: "categoriaProduto", Value: *data.Category})
	}
	return doc
}

func reservationDocument(data dto.ReservationRequest) bson.D {
	doc := bson.D{}
	if data.ConsumerID != nil {
		doc = append(doc, bson.E{Key: "idConsumidor", Value: *data.ConsumerID})
	}
	if data.ProductID != nil {
		doc = append(doc, bson.E{Key: "idProduto", Value: *data.ProductID})
	}
	if data.Quantity != nil {
		doc = append(doc, bson.E{Key: "quantidadeReserva", Value: *data.Quantity})
	}
	if data.Date != nil {
		doc = append(doc, bson.E{Key: "dataReserva", Value: *data.Date})
	}
	if data.Status != nil {
		doc = append(doc, bson.E{Key: "statusReserva", Value: *data.Status})
	}
	return doc
}

func evaluationDocument(data dto.EvaluationRequest) bson.D {
	doc := bson.D{}
	if data.Rating != nil {
		doc = append(doc, bson.E{Key: "avaliacaoReserva", Value: *data.Rating})
	}
	if data.Stars != nil {
		doc = append(doc, bson.E{Key: "estrelasReserva", Value: *data.Stars})
	}
	if data.PhotoURLs != nil {
		doc = append(doc, bson.E{Key: "fotosUrlReserva", Value: *data.PhotoURLs})
	}
	return doc
}

func filterDocument(filters map[string]interface{}) bson.D {
	doc := bson.D{}
	for key, value := range filters {
		doc = append(doc, bson.E{Key: key, Value: value})
	}
	return doc
}
