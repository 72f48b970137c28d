package forms

import "github.com/hidrodema/obra-forms/forms/mask"

// MDS status vocabulary.
const (
	MDSStatusDraft          = "draft"
	MDSStatusAwaitingQuotes = "awaiting-quotes"
	MDSStatusQuoted         = "quoted"
	MDSStatusApproved       = "approved"
	MDSStatusCompleted      = "completed"
)

// MDSForm is the service equalization questionnaire (Memorial Descritivo
// de Serviços).
func MDSForm() *Form {
	return &Form{
		ID:           "mds",
		Title:        "Equalizador de Serviços (MDS)",
		Collection:   "mds_records",
		RecordPrefix: "MDS",
		Sections: []string{
			"identificacao",
			"local",
			"servicos",
			"responsabilidades",
			"condicoes",
		},
		Statuses: []string{
			MDSStatusDraft,
			MDSStatusAwaitingQuotes,
			MDSStatusQuoted,
			MDSStatusApproved,
			MDSStatusCompleted,
		},
		InitialStatus: MDSStatusAwaitingQuotes,
		DraftStatus:   MDSStatusDraft,
		Denorm: Denorm{
			ClientKey:       "cliente",
			WorkLocationKey: "local_obra",
			VisitDateKey:    "data_visita",
		},
		Questions: []Question{
			{ID: "cliente", Type: Text, Label: "Cliente", Required: true, Section: "identificacao"},
			{ID: "cnpj", Type: Text, Label: "CNPJ", Section: "identificacao", Mask: mask.CNPJ},
			{ID: "contato", Type: Text, Label: "Contato responsável", Required: true, Section: "identificacao"},
			{ID: "telefone", Type: Text, Label: "Telefone", Section: "identificacao", Mask: mask.Phone},

			{ID: "local_obra", Type: Text, Label: "Local da obra", Required: true, Section: "local"},
			{ID: "cep", Type: Text, Label: "CEP", Section: "local", Mask: mask.CEP},
			{ID: "data_visita", Type: Date, Label: "Data da visita técnica", Required: true, Section: "local"},

			{ID: "tipo_servico", Type: Checkbox, Label: "Serviços contemplados", Required: true, Section: "servicos",
				Options: []string{"Hidrodemolição", "Corte", "Perfuração", "Reforço estrutural", "Limpeza industrial"}},
			{ID: "descricao_servico", Type: TextArea, Label: "Descrição do escopo", Required: true, Section: "servicos"},
			{ID: "valor_estimado", Type: Text, Label: "Valor estimado", Section: "servicos", Mask: mask.Currency},
			{ID: "area_m2", Type: Text, Label: "Área (m²)", Section: "servicos", Mask: mask.Number,
				Min: intp(0), Max: intp(100000)},

			{ID: "resp", Type: Matrix, Label: "Matriz de responsabilidades", Required: true, Section: "responsabilidades",
				MatrixRows: []MatrixRow{
					{Label: "Água e energia no local", Key: "agua_energia"},
					{Label: "Andaimes e acessos", Key: "andaimes"},
					{Label: "Remoção de entulho", Key: "entulho"},
					{Label: "Sinalização e isolamento", Key: "sinalizacao"},
				},
				MatrixColumns: []string{"Contratante", "Contratada", "Não se aplica"}},

			{ID: "prazo", Type: Select, Label: "Prazo de execução", Section: "condicoes",
				Options: []string{"Até 15 dias", "15 a 30 dias", "30 a 60 dias", "Acima de 60 dias"}},
			{ID: "condicoes_pagamento", Type: TextArea, Label: "Condições de pagamento", Section: "condicoes"},
		},
	}
}

func intp(n int) *int { return &n }
