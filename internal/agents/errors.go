package agents

import "errors"

// ErrContract marks a collaborator response that violates its output
// contract: unparseable JSON or a value outside a closed enumeration.
var ErrContract = errors.New("collaborator contract violation")
