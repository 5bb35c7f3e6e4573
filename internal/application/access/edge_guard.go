package access

// EdgeDecision resultado del guard perimetral.
type EdgeDecision struct {
	Allow      bool
	RedirectTo string
}

// EdgeGuard chequeo grueso de presencia de token antes de entrar a un árbol
// protegido. No valida firma, expiración ni rol.
type EdgeGuard struct {
	protected []string
	public    []string
}

// NewEdgeGuard toma los prefijos protegidos de la política.
func NewEdgeGuard(policy *Policy) *EdgeGuard {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &EdgeGuard{
		protected: policy.Prefixes(),
		public:    []string{"/auth", "/static", "/api/auth"},
	}
}

// Decide / y /auth/* pasan siempre; los árboles protegidos exigen token; el resto pasa.
func (g *EdgeGuard) Decide(path string, hasToken bool) EdgeDecision {
	if path == "" || path == "/" {
		return EdgeDecision{Allow: true}
	}
	for _, p := range g.public {
		if matchPrefix(path, p) {
			return EdgeDecision{Allow: true}
		}
	}
	for _, p := range g.protected {
		if matchPrefix(path, p) {
			if hasToken {
				return EdgeDecision{Allow: true}
			}
			return EdgeDecision{RedirectTo: LoginPath}
		}
	}
	return EdgeDecision{Allow: true}
}
