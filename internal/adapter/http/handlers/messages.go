package handlers

// Flash message ids, resolved by the translator.
const (
	MsgLoggedIn       = "loggedIn"
	MsgLoggedOut      = "loggedOut"
	MsgUserRegistered = "userRegistered"
	MsgUserUpdated    = "userUpdated"
	MsgUserDeleted    = "userDeleted"
	MsgUserInUse      = "userInUse"
	MsgStatusCreated  = "statusCreated"
	MsgStatusUpdated  = "statusUpdated"
	MsgStatusDeleted  = "statusDeleted"
	MsgStatusInUse    = "statusInUse"
	MsgLabelCreated   = "labelCreated"
	MsgLabelUpdated   = "labelUpdated"
	MsgLabelDeleted   = "labelDeleted"
	MsgTaskCreated    = "taskCreated"
	MsgTaskUpdated    = "taskUpdated"
	MsgTaskDeleted    = "taskDeleted"
)

// Page title and button ids.
const (
	titleCreateUser   = "createUser"
	titleUpdateUser   = "updateUser"
	titleDeleteUser   = "deleteUser"
	titleCreateStatus = "createStatus"
	titleUpdateStatus = "updateStatus"
	titleDeleteStatus = "deleteStatus"
	titleCreateLabel  = "createLabel"
	titleUpdateLabel  = "updateLabel"
	titleDeleteLabel  = "deleteLabel"
	titleCreateTask   = "createTask"
	titleUpdateTask   = "updateTask"
	titleDeleteTask   = "deleteTask"

	buttonRegister = "register"
	buttonCreate   = "create"
	buttonUpdate   = "update"
)

const (
	pageUserIndex   = "users/index"
	pageUserForm    = "users/form"
	pageStatusIndex = "statuses/index"
	pageLabelIndex  = "labels/index"
	pageNamedForm   = "named/form"
	pageTaskIndex   = "tasks/index"
	pageTaskDetail  = "tasks/detail"
	pageTaskForm    = "tasks/form"

	homePath     = "/"
	statusesPath = "/statuses/"
	labelsPath   = "/labels/"
)
