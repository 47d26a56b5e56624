package port

// Token issuance itself lives with the identity collaborator; the
// core only verifies bearer tokens on incoming requests.

type Role string

const (
	RoleConsumer   Role = "consumer"
	RoleRestaurant Role = "restaurant"
	RoleOperator   Role = "operator"
)

type TokenPayload struct {
	SubjectID uint64
	Role      Role
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(payload TokenPayload) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
