// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository persists author profiles.
type Repository interface {
	FindByUserID(context context.Context, userID string) (*Profile, error)
	Create(context context.Context, profile *Profile) error
}
