package dto

// RegistrationRequest carries create and update payloads. Pointer fields
// distinguish "not sent" from "sent as zero": an absent field is a no-op on
// update and is never written on create.
type RegistrationRequest struct {
	Name         *string `json:"nomeUsuario"`
	Phone        *string `json:"telefoneUsuario"`
	Address      *string `json:"enderecoUsuario"`
	RegisteredAt *string `json:"dataCadastroUsuario"`
	Type         *string `json:"tipoUsuario"`
}
