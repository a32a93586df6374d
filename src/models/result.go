package models

// --- CategoryRecommendation ---
type CategoryRecommendation struct {
	Name string `json:"name"`
	Why  string `json:"why"`
}

// --- PathRecommendation ---
// One of the three fixed curation strategies shown on the results step.
type PathRecommendation struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Categories  []CategoryRecommendation `json:"categories"`
	Focus       string                   `json:"focus"`
	Upgrade     string                   `json:"upgrade,omitempty"`
}

// --- DiagnosticResult ---
// Computed once per completed session, immutable afterwards.
type DiagnosticResult struct {
	Objective string               `json:"objective"`
	Audience  string               `json:"audience"`
	Scale     string               `json:"scale"`
	Direction string               `json:"direction"`
	Summary   string               `json:"summary"`
	Urgency   string               `json:"urgency"`
	Paths     []PathRecommendation `json:"paths"`
}
