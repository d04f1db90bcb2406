package dto

type ProductRequest struct {
	ProducerID     *string  `json:"idProdutor"`
	Name           *string  `json:"nomeProduto"`
	Price          *float64 `json:"precoProduto"`
	Quantity       *float64 `json:"quantidadeProduto"`
	Unit           *string  `json:"undMedida"`
	CreatedAt      *string  `json:"dataCriacaoProduto"`
	ProductionMode *string  `json:"modoProducao"`
	Category       *string  `json:"categoriaProduto"`
}
