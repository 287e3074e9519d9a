package policy

import (
	"testing"

	"earsip/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	doc := &model.Document{ID: "d1", UploaderID: "staf-owner"}

	tests := []struct {
		name    string
		account *model.Account
		want    bool
	}{
		{"admin", &model.Account{ID: "a1", Role: model.RoleAdmin}, true},
		{"owning staf", &model.Account{ID: "staf-owner", Role: model.RoleStaf}, true},
		{"non-owning staf", &model.Account{ID: "staf-other", Role: model.RoleStaf}, false},
		{"viewer", &model.Account{ID: "v1", Role: model.RoleViewer}, false},
		{"owning viewer", &model.Account{ID: "staf-owner", Role: model.RoleViewer}, true},
		{"nil account", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.account, doc))
		})
	}
}

func TestCanDelete(t *testing.T) {
	doc := &model.Document{ID: "d1", UploaderID: "u1"}

	assert.True(t, CanDelete(&model.Account{ID: "a1", Role: model.RoleAdmin}, doc))
	// Even the uploader may not delete unless admin.
	assert.False(t, CanDelete(&model.Account{ID: "u1", Role: model.RoleStaf}, doc))
	assert.False(t, CanDelete(&model.Account{ID: "v1", Role: model.RoleViewer}, doc))
	assert.False(t, CanDelete(nil, doc))
}

func TestCanView(t *testing.T) {
	doc := &model.Document{ID: "d1"}

	assert.True(t, CanView(&model.Account{ID: "v1", Role: model.RoleViewer}, doc))
	assert.False(t, CanView(nil, doc))
}

func TestCanManage(t *testing.T) {
	admin := &model.Account{ID: "a1", Role: model.RoleAdmin}
	staf := &model.Account{ID: "s1", Role: model.RoleStaf}

	assert.True(t, CanManageCategories(admin))
	assert.False(t, CanManageCategories(staf))
	assert.True(t, CanManageAccounts(admin))
	assert.False(t, CanManageAccounts(staf))
	assert.False(t, CanManageAccounts(nil))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, model.RoleAdmin.Valid())
	assert.True(t, model.RoleStaf.Valid())
	assert.True(t, model.RoleViewer.Valid())
	assert.False(t, model.Role("superuser").Valid())
	assert.False(t, model.Role("").Valid())
}
