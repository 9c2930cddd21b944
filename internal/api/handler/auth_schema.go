package handler

// Messages surfaced verbatim on the login form.
const (
	msgMalformedForm    = "Form not submitted correctly."
	msgBadCombination   = "Username/Password combination is incorrect"
	msgUserExistsFmt    = "User with username %s already exists"
	msgNotImplemented   = "Not implemented"
	msgInvalidLoginType = "Login type invalid"
)

// fieldErrors carries per-field advisory messages for re-display next to the
// offending inputs.
type fieldErrors struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

func (fe fieldErrors) empty() bool {
	return fe.Username == "" && fe.Password == ""
}

// formFields echoes the submitted values back so the form can be re-rendered
// with prior input. The password is deliberately absent.
type formFields struct {
	LoginType string `json:"loginType"`
	Username  string `json:"username"`
}

// actionData is the structured body returned with every 400 on the login
// form. A response carrying any of these never carries a session cookie.
type actionData struct {
	FormError   string       `json:"formError,omitempty"`
	FieldErrors *fieldErrors `json:"fieldErrors,omitempty"`
	Fields      *formFields  `json:"fields,omitempty"`
}
