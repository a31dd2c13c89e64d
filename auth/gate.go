package auth

// Credentials are the single admin identifier and secret the panel accepts.
type Credentials struct {
	Identifier string
	Secret     string
}

// Gate decides whether a submitted credential pair opens the panel.
type Gate struct {
	expected Credentials
}

func NewGate(expected Credentials) *Gate {
	return &Gate{expected: expected}
}

// Check compares both values verbatim. Unset expected values never match.
func (g *Gate) Check(identifier, secret string) bool {
	if g.expected.Identifier == "" || g.expected.Secret == "" {
		return false
	}
	return identifier == g.expected.Identifier && secret == g.expected.Secret
}
