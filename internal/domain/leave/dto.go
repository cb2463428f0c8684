package leave

type DecideLeaveRequest struct {
	Comment string `json:"comment"`
}
