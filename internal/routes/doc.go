// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package routes installs the application's pipelines on a router.
//
//	/hello        GET, HEAD  greeting, optional ?name=
//	/api/version  GET        build information
//	/api/echo     POST       validated echo of the request body
package routes
