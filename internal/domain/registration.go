package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Registration is a producer or consumer record in the "cadastros"
// collection. All fields are free-form; only the store-assigned ID is
// guaranteed to be present.
type Registration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"nomeUsuario,omitempty" json:"nomeUsuario,omitempty"`
	Phone        string             `bson:"telefoneUsuario,omitempty" json:"telefoneUsuario,omitempty"`
	Address      string             `bson:"enderecoUsuario,omitempty" json:"enderecoUsuario,omitempty"`
	RegisteredAt string             `bson:"dataCadastroUsuario,omitempty" json:"dataCadastroUsuario,omitempty"`
	Type         string             `bson:"tipoUsuario,omitempty" json:"tipoUsuario,omitempty"`
}
