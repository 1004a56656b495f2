package consts

const (
	SessionRevokedKey    = "auth:session:revoked:"
	EmailConfirmTokenKey = "auth:email:confirm:"
)
