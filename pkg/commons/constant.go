// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package commons

// SEPARATOR splits list-valued option and environment strings.
const SEPARATOR = ","
