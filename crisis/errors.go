package crisis

import "errors"

var ErrSessionFull = errors.New("session is full")

type InvalidCatalogError string

func (e InvalidCatalogError) Error() string { return "invalid catalog: " + string(e) }
