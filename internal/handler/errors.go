// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNilServices is returned by NewHandlers when it is called before the
// service layer was built.
var errNilServices = errors.New("services are not initialized")
