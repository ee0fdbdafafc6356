package tree

type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

type Status string

const (
	StatusPresent  Status = "present"
	StatusMissing  Status = "missing"
	StatusConflict Status = "conflict"
)
