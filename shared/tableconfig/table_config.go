/*
 * Copyright (c) HashiCorp, Inc.
 * SPDX-License-Identifier: MPL-2.0
 */

package tableconfig

import (
	"encoding/json"
	"fmt"
	"strings"
	"github.com/dataplane-ops/glue-catalog-bootstrap/lambda-functions/shared/exceptions"
)

// TableConfig describes a single catalog table to register. Columns and
// Location drive the Glue CreateTable path; when Query is set the table is
// registered by running the DDL through Athena instead.
type TableConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Columns     []Column `json:"columns"`
	Query       string   `json:"query"`
}

type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type tableConfigDocument struct {
	Tables []TableConfig `json:"tables"`
}

// RenderQuery substitutes the ${DATA_BUCKET} placeholder in the DDL template
// with the bucket that holds the table data.
func (config TableConfig) RenderQuery(dataBucket string) string {
	replacer := strings.NewReplacer("${DATA_BUCKET}", dataBucket, "$DATA_BUCKET", dataBucket)
	return replacer.Replace(config.Query)
}

func decodeTableConfigs(document []byte) ([]TableConfig, error) {
	parsed := &tableConfigDocument{}
	if err := json.Unmarshal(document, parsed); err != nil {
		return nil, exceptions.TableConfigException{Message: fmt.Sprintf("failed to decode table configurations: %s", err)}
	}

	return parsed.Tables, nil
}
