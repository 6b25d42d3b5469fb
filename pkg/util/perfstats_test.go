// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PerfStats_01(t *testing.T) {
	hook := test.NewGlobal()
	defer log.SetLevel(log.InfoLevel)
	//
	log.SetLevel(log.DebugLevel)
	NewPerfStats().Log("Phase")
	//
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, log.DebugLevel, hook.LastEntry().Level)
	assert.True(t, strings.HasPrefix(hook.LastEntry().Message, "Phase took "))
}

func Test_PerfStats_02(t *testing.T) {
	hook := test.NewGlobal()
	//
	log.SetLevel(log.InfoLevel)
	NewPerfStats().Log("Phase")
	//
	assert.Empty(t, hook.AllEntries())
}
