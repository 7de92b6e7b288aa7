package domain

// Fixed catalogs the whole application keys off. Alert.Type and
// Alert.Severity reference these by id.

type CrimeType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type SeverityLevel struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

var CrimeTypes = []CrimeType{
	{ID: "robo", Name: "Robo", Color: "#f59e0b", Icon: "💰"},
	{ID: "asalto", Name: "Asalto", Color: "#ef4444", Icon: "🔪"},
	{ID: "estafa", Name: "Estafa", Color: "#8b5cf6", Icon: "📱"},
	{ID: "vandalismo", Name: "Vandalismo", Color: "#6366f1", Icon: "🔨"},
	{ID: "secuestro", Name: "Secuestro", Color: "#dc2626", Icon: "🚨"},
	{ID: "extorsion", Name: "Extorsión", Color: "#7c3aed", Icon: "📞"},
}

var SeverityLevels = []SeverityLevel{
	{ID: 1, Name: "Bajo", Color: "#10b981"},
	{ID: 2, Name: "Moderado", Color: "#f59e0b"},
	{ID: 3, Name: "Alto", Color: "#ef4444"},
	{ID: 4, Name: "Crítico", Color: "#dc2626"},
	{ID: 5, Name: "Emergencia", Color: "#991b1b"},
}

var Zonas = []string{
	"Zona 1", "Zona 2", "Zona 3", "Zona 4", "Zona 5", "Zona 6",
	"Zona 7", "Zona 8", "Zona 9", "Zona 10", "Zona 11", "Zona 12",
	"Zona 13", "Zona 14", "Zona 15", "Zona 16", "Zona 17", "Zona 18",
	"Zona 19", "Zona 21", "Zona 24", "Zona 25",
}

func CrimeTypeByID(id string) (CrimeType, bool) {
	for _, t := range CrimeTypes {
		if t.ID == id {
			return t, true
		}
	}
	return CrimeType{}, false
}

func SeverityByID(id int) (SeverityLevel, bool) {
	if id < 1 || id > len(SeverityLevels) {
		return SeverityLevel{}, false
	}
	return SeverityLevels[id-1], true
}

func ValidZona(name string) bool {
	for _, z := range Zonas {
		if z == name {
			return true
		}
	}
	return false
}
