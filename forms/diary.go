package forms

import "github.com/hidrodema/obra-forms/forms/mask"

// Diary report flows: daily report (RDO), hydrostatic test report (RTH)
// and conclusion report (RCO).
const (
	FlowDiaryDaily      FlowKind = "rdo"
	FlowDiaryHydroTest  FlowKind = "rth"
	FlowDiaryConclusion FlowKind = "rco"
)

const (
	DiaryStatusDraft    = "draft"
	DiaryStatusOpen     = "open"
	DiaryStatusReviewed = "reviewed"
	DiaryStatusClosed   = "closed"
)

// DiaryForm covers the construction-diary report sub-forms behind one
// report-type selector.
func DiaryForm() *Form {
	return &Form{
		ID:           "diario",
		Title:        "Diário de Obras",
		Collection:   "diary_records",
		RecordPrefix: "DIA",
		Flow: &FlowRule{
			QuestionID: "tipo_relatorio",
			Flows: map[string]FlowKind{
				"RDO - Relatório Diário":                FlowDiaryDaily,
				"RTH - Relatório de Teste Hidrostático": FlowDiaryHydroTest,
				"RCO - Relatório de Conclusão":          FlowDiaryConclusion,
			},
			Sections: map[FlowKind][]string{
				FlowDiaryDaily:      {"identificacao", "diario", "equipe"},
				FlowDiaryHydroTest:  {"identificacao", "teste"},
				FlowDiaryConclusion: {"identificacao", "conclusao"},
			},
			Default: []string{"identificacao"},
		},
		Statuses: []string{
			DiaryStatusDraft,
			DiaryStatusOpen,
			DiaryStatusReviewed,
			DiaryStatusClosed,
		},
		InitialStatus: DiaryStatusOpen,
		DraftStatus:   DiaryStatusDraft,
		Denorm: Denorm{
			ClientKey:       "cliente",
			WorkLocationKey: "obra",
			VisitDateKey:    "data_relatorio",
		},
		Questions: []Question{
			{ID: "tipo_relatorio", Type: Radio, Label: "Tipo de relatório", Required: true, Section: "identificacao",
				Options: []string{
					"RDO - Relatório Diário",
					"RTH - Relatório de Teste Hidrostático",
					"RCO - Relatório de Conclusão",
				}},
			{ID: "cliente", Type: Text, Label: "Cliente", Required: true, Section: "identificacao"},
			{ID: "obra", Type: Text, Label: "Obra", Required: true, Section: "identificacao"},
			{ID: "data_relatorio", Type: Date, Label: "Data do relatório", Required: true, Section: "identificacao"},

			{ID: "clima", Type: Radio, Label: "Condições climáticas", Section: "diario",
				Options: []string{"Bom", "Nublado", "Chuva", "Impraticável"}},
			{ID: "atividades", Type: TextArea, Label: "Atividades executadas", Required: true, Section: "diario"},
			{ID: "ocorrencias", Type: TextArea, Label: "Ocorrências", Section: "diario"},

			{ID: "efetivo", Type: Text, Label: "Efetivo em campo", Section: "equipe", Mask: mask.Number,
				Min: intp(0), Max: intp(500)},
			{ID: "horas_trabalhadas", Type: Text, Label: "Horas trabalhadas", Section: "equipe", Mask: mask.Number},

			{ID: "pressao_teste", Type: Text, Label: "Pressão de teste (bar)", Required: true, Section: "teste", Mask: mask.Decimal},
			{ID: "duracao_teste", Type: Text, Label: "Duração (min)", Section: "teste", Mask: mask.Number},
			{ID: "resultado_teste", Type: Radio, Label: "Resultado", Required: true, Section: "teste",
				Options: []string{"Aprovado", "Reprovado"}},

			{ID: "resumo_final", Type: TextArea, Label: "Resumo dos serviços", Required: true, Section: "conclusao"},
			{ID: "pendencias", Type: TextArea, Label: "Pendências", Section: "conclusao"},
		},
	}
}
