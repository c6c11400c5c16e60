package domain

// DemoSpec describes one demo account: the plaintext password is reference
// data for the login form hints and is never persisted as-is.
type DemoSpec struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// demoSpecs is the fixed demo dataset, one account per role. Order matters:
// seeding results are returned in this order.
var demoSpecs = [3]DemoSpec{
	{Username: "admin", Email: "admin@test.com", Password: "admin123", Role: RoleAdmin},
	{Username: "reseller", Email: "reseller@test.com", Password: "reseller123", Role: RoleReseller},
	{Username: "user", Email: "user@test.com", Password: "user123", Role: RoleUser},
}

// DemoSpecs returns a copy of the demo dataset so callers cannot mutate it.
func DemoSpecs() []DemoSpec {
	out := make([]DemoSpec, len(demoSpecs))
	copy(out, demoSpecs[:])
	return out
}
