/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package exceptions

type MissingEnvironmentVariablesException struct {
	Message string
}

type TableConfigException struct {
	Message string
}

func (e MissingEnvironmentVariablesException) Error() string {
	return e.Message
}

func (e TableConfigException) Error() string {
	return e.Message
}
