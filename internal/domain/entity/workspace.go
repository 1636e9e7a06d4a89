package entity

// Workspace espacio de trabajo del escritorio del ERP con sus enlaces de barra lateral.
type Workspace struct {
	Name  string
	Type  string
	Links []WorkspaceLink
}

// WorkspaceLink enlace mostrado en la barra lateral de un workspace.
type WorkspaceLink struct {
	Label         string `json:"label"`
	LinkTo        string `json:"link_to"`
	LinkType      string `json:"link_type"`
	Type          string `json:"type"`
	Hidden        bool   `json:"hidden"`
	IsQueryReport bool   `json:"is_query_report"`
	LinkCount     int    `json:"link_count"`
	Onboard       bool   `json:"onboard"`
}

// HasLinkTo informa si el workspace ya enlaza al destino indicado.
func (w *Workspace) HasLinkTo(linkTo string) bool {
	for _, l := range w.Links {
		if l.LinkTo == linkTo {
			return true
		}
	}
	return false
}
