// Package policy centralizes authorization decisions for the archive.
// All predicates are pure functions of (principal, target); the service
// layer gates every mutating repository call through them, and no other
// package branches on role values.
package policy

import "earsip/internal/model"

// CanView reports whether the account may read a document.
// Any authenticated account may read any document.
func CanView(a *model.Account, _ *model.Document) bool {
	return a != nil
}

// CanEdit reports whether the account may change a document's metadata or
// replace its file: admins and the original uploader only.
func CanEdit(a *model.Account, d *model.Document) bool {
	if a == nil || d == nil {
		return false
	}
	return a.Role == model.RoleAdmin || a.ID == d.UploaderID
}

// CanDelete reports whether the account may delete a document.
func CanDelete(a *model.Account, _ *model.Document) bool {
	return a != nil && a.Role == model.RoleAdmin
}

// CanManageCategories reports whether the account may add or remove
// categories.
func CanManageCategories(a *model.Account) bool {
	return a != nil && a.Role == model.RoleAdmin
}

// CanManageAccounts reports whether the account may administer other
// accounts.
func CanManageAccounts(a *model.Account) bool {
	return a != nil && a.Role == model.RoleAdmin
}
