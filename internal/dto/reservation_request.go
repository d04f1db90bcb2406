package dto

type ReservationRequest struct {
	ConsumerID *string  `json:"idConsumidor"`
	ProductID  *string  `json:"idProduto"`
	Quantity   *float64 `json:"quantidadeReserva"`
	Date       *string  `json:"dataReserva"`
	Status     *string  `json:"statusReserva"`
}

// EvaluationRequest is the payload for attaching a rating to an existing
// reservation after the fact.
type EvaluationRequest struct {
	Rating    *string   `json:"avaliacaoReserva"`
	Stars     *int      `json:"estrelasReserva"`
	PhotoURLs *[]string `json:"fotosUrlReserva"`
}
