package types

// SignInRequest is the login payload for all account kinds.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate() string {
	if r.Email == "" {
		return "Email is required"
	}
	if r.Password == "" {
		return "Password is required"
	}
	return ""
}

// ResolveRoleRequest asks which kind of principal an email belongs to.
type ResolveRoleRequest struct {
	Email string `json:"email"`
}
