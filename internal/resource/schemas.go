// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"github.com/MKhiriev/go-catalog-admin/internal/crypto"
	"github.com/MKhiriev/go-catalog-admin/internal/validators"
	"github.com/MKhiriev/go-catalog-admin/models"
)

// Entity status values.
const (
	StatusActive   int64 = 1
	StatusInactive int64 = 2
)

const msgUnknownCategory = "must reference an existing category"

func statusField() Field {
	rules := validators.OneOfInt(validators.MsgStatus, StatusActive, StatusInactive)
	return Field{
		Name:        "status",
		Kind:        KindInt,
		TypeMessage: validators.MsgStatus,
		CreateRules: rules,
		UpdateRules: rules,
		Default:     StatusActive,
	}
}

func nameField() Field {
	return Field{
		Name:             "name",
		Kind:             KindString,
		TypeMessage:      validators.MsgNonEmptyString,
		CreateRules:      validators.NonEmptyString(),
		UpdateRules:      validators.NonEmptyString(),
		RequiredOnCreate: true,
		Trim:             true,
	}
}

// CategorySchema describes the categories table. Names are unique
// regardless of case and are stored trimmed.
func CategorySchema() Schema {
	name := nameField()
	name.Unique = true
	name.UniqueKey = "name_key"

	return Schema{
		Entity:     "category",
		Table:      "categories",
		PrimaryKey: "id",
		Fields:     []Field{name, statusField()},
	}
}

// ProductSchema describes the products table.
func ProductSchema() Schema {
	return Schema{
		Entity:     "product",
		Table:      "products",
		PrimaryKey: "id",
		Fields: []Field{
			nameField(),
			statusField(),
			{
				Name:             "category_id",
				Kind:             KindInt,
				TypeMessage:      validators.MsgPositiveInteger,
				CreateRules:      validators.PositiveInt(),
				UpdateRules:      validators.PositiveInt(),
				RequiredOnCreate: true,
				References: &Reference{
					Table:   "categories",
					Column:  "id",
					Message: msgUnknownCategory,
				},
			},
			{
				Name:        "price",
				Kind:        KindNumber,
				TypeMessage: validators.MsgNumber,
				Nullable:    true,
			},
			{
				Name:        "stock",
				Kind:        KindInt,
				TypeMessage: validators.MsgNonNegativeInt,
				CreateRules: validators.NonNegativeInt(),
				UpdateRules: validators.NonNegativeInt(),
				Nullable:    true,
			},
			{
				Name:        "image",
				Kind:        KindString,
				EmptyAsNull: true,
			},
			{
				Name:        "description",
				Kind:        KindString,
				EmptyAsNull: true,
			},
		},
	}
}

// UserSchema describes the users table. Passwords are hashed with hasher
// and never projected. Creation accepts all four roles while updates accept
// only client and admin.
func UserSchema(hasher crypto.PasswordHasher) Schema {
	active := validators.OneOfInt(validators.MsgActiveFlag, 0, 1)

	return Schema{
		Entity:     "user",
		Table:      models.User{}.TableName(),
		PrimaryKey: "id",
		OrderBy:    "created_at DESC, id DESC",
		Fields: []Field{
			nameField(),
			{
				Name:             "email",
				Kind:             KindString,
				TypeMessage:      validators.MsgEmail,
				CreateRules:      validators.Email(),
				UpdateRules:      validators.Email(),
				RequiredOnCreate: true,
				Trim:             true,
				Lower:            true,
				Unique:           true,
			},
			{
				Name:             "password",
				Kind:             KindString,
				TypeMessage:      validators.MsgPasswordLength,
				CreateRules:      validators.Password(),
				UpdateRules:      validators.Password(),
				RequiredOnCreate: true,
				Hidden:           true,
				Transform: func(value any) (any, error) {
					return hasher.Hash(value.(string))
				},
			},
			{
				Name:        "role",
				Kind:        KindString,
				CreateRules: validators.OneOfString(validators.MsgCreateRoles, models.RoleOperator, models.RoleAdmin, models.RoleVendor, models.RoleClient),
				UpdateRules: validators.OneOfString(validators.MsgUpdateRoles, models.RoleClient, models.RoleAdmin),
				Default:     models.RoleOperator,
			},
			{
				Name:        "active",
				Kind:        KindInt,
				TypeMessage: validators.MsgActiveFlag,
				CreateRules: active,
				UpdateRules: active,
				Default:     int64(1),
			},
			{
				Name:     "created_at",
				Kind:     KindTimestamp,
				ReadOnly: true,
			},
		},
		ReturnFullOnUpdate: true,
		ReloadOnCreate:     true,
	}
}
