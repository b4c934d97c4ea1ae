package domain

// Action is something a role may or may not be permitted to do.
type Action string

const (
	ActionUploadContent    Action = "upload_content" // Upload videos or notes
	ActionCreateQuiz       Action = "create_quiz"
	ActionListContent      Action = "list_content" // List/view videos, notes, quizzes
	ActionListUsers        Action = "list_users"
	ActionManageUserStatus Action = "manage_user_status"
)

// permissionTable is the static role → allowed actions mapping. There is no
// dynamic policy: every route checks this table before any mutation.
var permissionTable = map[Role]map[Action]bool{
	RoleStudent: {
		ActionListContent: true,
	},
	RoleFaculty: {
		ActionUploadContent: true,
		ActionCreateQuiz:    true,
		ActionListContent:   true,
	},
	RoleAdmin: {
		ActionUploadContent:    true,
		ActionCreateQuiz:       true,
		ActionListContent:      true,
		ActionListUsers:        true,
		ActionManageUserStatus: true,
	},
}

// Allowed reports whether the given role may perform the given action.
// Unknown roles and unknown actions are never allowed.
func Allowed(role Role, action Action) bool {
	return permissionTable[role][action]
}
