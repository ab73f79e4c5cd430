package models

type Error struct {
	Detail string `json:"detail"`
}

// Welcome is the payload served at the API root.
type Welcome struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Redoc   string `json:"redoc"`
}
