// types package contains the types shared between the table renderer
// and the HTTP host
package types

import "net/http"

type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}
