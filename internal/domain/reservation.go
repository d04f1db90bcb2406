package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Reservation lives in the "reservas" collection. ConsumerID and ProductID
// are soft references; deleting the referenced documents leaves the
// reservation untouched, so consumers must tolerate orphans. The evaluation
// fields are attached after creation and may be set on any reservation
// regardless of status.
type Reservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ConsumerID string             `bson:"idConsumidor,omitempty" json:"idConsumidor,omitempty"`
	ProductID  string             `bson:"idProduto,omitempty" json:"idProduto,omitempty"`
	Quantity   float64            `bson:"quantidadeReserva,omitempty" json:"quantidadeReserva,omitempty"`
	Date       string             `bson:"dataReserva,omitempty" json:"dataReserva,omitempty"`
	Status     string             `bson:"statusReserva,omitempty" json:"statusReserva,omitempty"`
	Rating     string             `bson:"avaliacaoReserva,omitempty" json:"avaliacaoReserva,omitempty"`
	Stars      int                `bson:"estrelasReserva,omitempty" json:"estrelasReserva,omitempty"`
	PhotoURLs  []string           `bson:"fotosUrlReserva,omitempty" json:"fotosUrlReserva,omitempty"`
}
