/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package exceptions

type MissingResourcePropertyException struct {
	Message string
}

type MalformedCreatorResponseException struct {
	Message string
}

func (e MissingResourcePropertyException) Error() string {
	return e.Message
}

func (e MalformedCreatorResponseException) Error() string {
	return e.Message
}
