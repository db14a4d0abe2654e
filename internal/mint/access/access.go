// Package access provides the default administrator check: a single
// configured administrator address.
package access

import "mintgate/pkg/domain"

type StaticAdmin struct {
	admin domain.Address
}

func NewStaticAdmin(admin domain.Address) *StaticAdmin {
	return &StaticAdmin{admin: admin}
}

func (a *StaticAdmin) IsAdministrator(addr domain.Address) bool {
	return !a.admin.IsNil() && addr == a.admin
}
