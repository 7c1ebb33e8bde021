package strategy

import "github.com/mkarlen/fairshare/types"

// ErrNoEligibleMembers indicates that the candidate set was empty.
// Alias of types.ErrNoEligibleMembers so errors.Is works across packages.
var ErrNoEligibleMembers = types.ErrNoEligibleMembers
