/*
 * fetch.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package structio

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	chem "github.com/rmera/mogura"
)

// RCSBURL is the default URL template for Fetcher. %s is replaced by the PDB ID.
const RCSBURL = "https://files.rcsb.org/view/%s.pdb"

// Fetcher downloads PDB files from a web server.
type Fetcher struct {
	URL    string       //template with one %s for the ID. RCSBURL if empty.
	Client *http.Client //http.DefaultClient if nil.
}

// Fetch downloads the entry id and reads it as a PDB file.
func (F *Fetcher) Fetch(ctx context.Context, id string) (*chem.Structure, error) {
	if !validID(id) {
		return nil, chem.NewLoadError(id, "pdb", fmt.Errorf("invalid PDB ID %q", id), "Fetch")
	}
	tmpl := F.URL
	if tmpl == "" {
		tmpl = RCSBURL
	}
	client := F.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := fmt.Sprintf(tmpl, strings.ToUpper(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, chem.NewLoadError(url, "pdb", err, "Fetch")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, chem.NewLoadError(url, "pdb", err, "Fetch")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, chem.NewLoadError(url, "pdb", fmt.Errorf("failed to download %s: %s", id, resp.Status), "Fetch")
	}
	S, err := read(resp.Body, "pdb")
	if err != nil {
		return nil, chem.NewLoadError(url, "pdb", err, "Fetch")
	}
	return S, nil
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}
