package api

// ErrorAction determines how the client handles a failed attempt.
type ErrorAction int

const (
	ActionFatal   ErrorAction = iota // surface the error to the caller
	ActionRefresh                    // refresh the access token and replay once
)

// maxReplays is the number of times one request may be replayed after a refresh.
const maxReplays = 1

// ClassifyError determines the action for an attempt that failed with err.
// attempt counts the replays already made for the request.
func ClassifyError(err error, attempt int) ErrorAction {
	if err == nil {
		return ActionFatal // Should not happen
	}

	if attempt >= maxReplays {
		return ActionFatal
	}

	if IsUnauthorized(err) {
		return ActionRefresh
	}

	// Transport failures, 4xx and 5xx are terminal
	return ActionFatal
}
