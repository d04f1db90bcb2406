package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product lives in the "produtos" collection. ProducerID is a soft reference
// to a registration document; it is never validated against the store.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProducerID     string             `bson:"idProdutor,omitempty" json:"idProdutor,omitempty"`
	Name           string             `bson:"nomeProduto,omitempty" json:"nomeProduto,omitempty"`
	Price          float64            `bson:"precoProduto,omitempty" json:"precoProduto,omitempty"`
	Quantity       float64            `bson:"quantidadeProduto,omitempty" json:"quantidadeProduto,omitempty"`
	Unit           string             `bson:"undMedida,omitempty" json:"undMedida,omitempty"`
	CreatedAt      string             `bson:"dataCriacaoProduto,omitempty" json:"dataCriacaoProduto,omitempty"`
	ProductionMode string             `bson:"modoProducao,omitempty" json:"modoProducao,omitempty"`
	Category       string             `bson:"categoriaProduto,omitempty" json:"categoriaProduto,omitempty"`
}
