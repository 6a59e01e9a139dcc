// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names every table and column of the Inkwell database.
//
// Stores build SQL from these definitions instead of string literals, so a
// renamed column is a compile error rather than a runtime one.
package schema
