// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"bufio"
	"os"
	"strings"
)

// userName finds the login name for uid in the passwd record: name:password:uid:gid:gecos:home:shell.
func (r *Reader) userName(uid string) (string, error) {
	name := r.cfg.Passwd
	f, err := os.Open(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		l := sc.Text()
		if strings.HasPrefix(l, "#") {
			continue
		}
		flds := strings.Split(l, ":")
		if len(flds) >= 3 && flds[2] == uid {
			return flds[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", unavailable(name, err)
	}

	return "", notFound(name, "uid "+uid)
}
