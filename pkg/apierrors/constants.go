package apierrors

const (
	MsgPageNotFound     = "pageNotFound"
	MsgTaskNotFound     = "taskNotFound"
	MsgUserNotFound     = "userNotFound"
	MsgLabelNotFound    = "labelNotFound"
	MsgStatusNotFound   = "statusNotFound"
	MsgInternalError    = "internalError"
	MsgDatabaseDown     = "databaseDown"
	MsgFailListTask     = "errorListTask"
	MsgFailSaveTask     = "failSaveTask"
	MsgFailListUsers    = "failListUsers"
	MsgFailSaveUser     = "failSaveUser"
	MsgFailListLabels   = "failListLabels"
	MsgFailSaveLabel    = "failSaveLabel"
	MsgFailListStatuses = "failListStatuses"
	MsgFailSaveStatus   = "failSaveStatus"
)
