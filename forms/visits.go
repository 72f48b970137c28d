package forms

import "github.com/hidrodema/obra-forms/forms/mask"

// Visit flows: the first answer decides whether the user is requesting a
// visit or filing the report of one already made.
const (
	FlowVisitRequest FlowKind = "visit-request"
	FlowVisitReport  FlowKind = "visit-report"
)

const (
	VisitStatusDraft     = "draft"
	VisitStatusOpen      = "open"
	VisitStatusScheduled = "scheduled"
	VisitStatusCompleted = "completed"
)

// VisitsForm covers site visit requests and reports behind one flow
// selector.
func VisitsForm() *Form {
	return &Form{
		ID:           "visitas",
		Title:        "Relatório de Visitas",
		Collection:   "visit_records",
		RecordPrefix: "VIS",
		Flow: &FlowRule{
			QuestionID: "tipo_fluxo",
			Flows: map[string]FlowKind{
				"Solicitar visita": FlowVisitRequest,
				"Relatar visita":   FlowVisitReport,
			},
			Sections: map[FlowKind][]string{
				FlowVisitRequest: {"fluxo", "solicitacao", "agendamento"},
				FlowVisitReport:  {"fluxo", "relatorio", "conclusao"},
			},
			Default: []string{"fluxo"},
		},
		Statuses: []string{
			VisitStatusDraft,
			VisitStatusOpen,
			VisitStatusScheduled,
			VisitStatusCompleted,
		},
		InitialStatus: VisitStatusOpen,
		DraftStatus:   VisitStatusDraft,
		Denorm: Denorm{
			ClientKey:       "cliente",
			WorkLocationKey: "local_obra",
			VisitDateKey:    "data_visita",
		},
		Questions: []Question{
			{ID: "tipo_fluxo", Type: Radio, Label: "O que deseja fazer?", Required: true, Section: "fluxo",
				Options: []string{"Solicitar visita", "Relatar visita"}},
			{ID: "cliente", Type: Text, Label: "Cliente", Required: true, Section: "fluxo"},

			{ID: "local_obra", Type: Text, Label: "Local da obra", Required: true, Section: "solicitacao"},
			{ID: "motivo", Type: TextArea, Label: "Motivo da visita", Required: true, Section: "solicitacao"},
			{ID: "contato_tel", Type: Text, Label: "Telefone de contato", Section: "solicitacao", Mask: mask.Phone},

			{ID: "data_visita", Type: Date, Label: "Data preferencial", Required: true, Section: "agendamento"},
			{ID: "hora_visita", Type: Time, Label: "Horário preferencial", Section: "agendamento"},

			{ID: "data_realizada", Type: Date, Label: "Data da visita realizada", Required: true, Section: "relatorio"},
			{ID: "observacoes", Type: TextArea, Label: "Observações de campo", Required: true, Section: "relatorio"},
			{ID: "condicoes_acesso", Type: Radio, Label: "Condições de acesso", Section: "relatorio",
				Options: []string{"Adequadas", "Restritas", "Inviáveis"}},

			{ID: "recomendacao", Type: TextArea, Label: "Recomendação técnica", Required: true, Section: "conclusao"},
			{ID: "requer_orcamento", Type: Radio, Label: "Requer orçamento?", Section: "conclusao",
				Options: []string{"Sim", "Não"}},
		},
	}
}
