package request

// LancamentoRequest adds an itemized entry to a prestação de contas.
type LancamentoRequest struct {
	PrestacaoID string  `json:"prestacao_id"`
	Tipo        string  `json:"tipo"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
}

// DescontoRequest registers a discount on a prestação de contas.
type DescontoRequest struct {
	PrestacaoID string  `json:"prestacao_id"`
	Descricao   string  `json:"descricao"`
	Valor       float64 `json:"valor"`
}

// PagamentoDetalhesRequest updates the payment details and the free-text
// observação of a prestação de contas.
type PagamentoDetalhesRequest struct {
	PrestacaoID    string  `json:"prestacao_id"`
	DataPagamento  *string `json:"data_pagamento,omitempty"`
	FormaPagamento *string `json:"forma_pagamento,omitempty"`
	Observacao     *string `json:"observacao,omitempty"`
}
