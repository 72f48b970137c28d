package forms

// Registry holds the installed form definitions in declaration order.
type Registry struct {
	order []string
	forms map[string]*Form
}

func NewRegistry(forms ...*Form) *Registry {
	r := &Registry{forms: map[string]*Form{}}
	for _, f := range forms {
		r.order = append(r.order, f.ID)
		r.forms[f.ID] = f
	}
	return r
}

func (r *Registry) Get(id string) (*Form, bool) {
	f, ok := r.forms[id]
	return f, ok
}

func (r *Registry) All() []*Form {
	out := make([]*Form, len(r.order))
	for i, id := range r.order {
		out[i] = r.forms[id]
	}
	return out
}

// DefaultRegistry installs the HIDRODEMA module forms: MDS service
// equalization, site visits, generic service requests and the
// construction-diary reports.
func DefaultRegistry() *Registry {
	return NewRegistry(MDSForm(), VisitsForm(), ServiceRequestForm(), DiaryForm())
}
