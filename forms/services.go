package forms

import "github.com/hidrodema/obra-forms/forms/mask"

const (
	ServiceStatusDraft      = "draft"
	ServiceStatusOpen       = "open"
	ServiceStatusInProgress = "in-progress"
	ServiceStatusCompleted  = "completed"
)

// ServiceRequestForm is the generic service request questionnaire.
func ServiceRequestForm() *Form {
	return &Form{
		ID:           "servicos",
		Title:        "Solicitação de Serviços",
		Collection:   "service_records",
		RecordPrefix: "SRV",
		Sections:     []string{"solicitante", "servico", "detalhes"},
		Statuses: []string{
			ServiceStatusDraft,
			ServiceStatusOpen,
			ServiceStatusInProgress,
			ServiceStatusCompleted,
		},
		InitialStatus: ServiceStatusOpen,
		DraftStatus:   ServiceStatusDraft,
		Denorm: Denorm{
			ClientKey:       "solicitante",
			WorkLocationKey: "local",
			VisitDateKey:    "data_necessidade",
		},
		Questions: []Question{
			{ID: "solicitante", Type: Text, Label: "Solicitante", Required: true, Section: "solicitante"},
			{ID: "documento", Type: Text, Label: "CPF ou CNPJ", Section: "solicitante", Mask: mask.CPFOrCNPJ},
			{ID: "telefone", Type: Text, Label: "Telefone", Section: "solicitante", Mask: mask.Phone},

			{ID: "categoria", Type: Select, Label: "Categoria do serviço", Required: true, Section: "servico",
				Options: []string{"Hidrodemolição", "Corte e perfuração", "Reparo estrutural", "Outro"}},
			{ID: "local", Type: Text, Label: "Local de execução", Required: true, Section: "servico"},
			{ID: "data_necessidade", Type: Date, Label: "Data desejada", Section: "servico"},

			{ID: "descricao", Type: TextArea, Label: "Descrição da necessidade", Required: true, Section: "detalhes"},
			{ID: "urgencia", Type: Radio, Label: "Urgência", Section: "detalhes",
				Options: []string{"Baixa", "Média", "Alta"}},
		},
	}
}
