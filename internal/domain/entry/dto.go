package entry

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type createInput struct {
	Body Fields
}

type createOutput struct {
	Body Entry
}

type updateInput struct {
	ID   string `path:"id" doc:"Entry id"`
	Body Fields
}

type deleteInput struct {
	ID string `path:"id" doc:"Entry id"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
}
