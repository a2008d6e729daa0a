package shared

const (
	UserID = "user_id"

	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"

	ChallengeTypeSelect = "SELECT"
	ChallengeTypeAssist = "ASSIST"

	MediaTypeAudio = "AUDIO"
	MediaTypeImage = "IMAGE"

	InvitationPending  = "PENDING"
	InvitationAccepted = "ACCEPTED"
)
