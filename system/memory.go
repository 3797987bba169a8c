// Copyright © 2021-2026 The Gomon Project.

package system

// MemoryTotal returns the MemTotal of the meminfo record in kB.
func (r *Reader) MemoryTotal() (int64, error) {
	return r.meminfo("MemTotal")
}

// MemoryUtilization returns the fraction of memory not free.
func (r *Reader) MemoryUtilization() (float64, error) {
	total, err := r.meminfo("MemTotal")
	if err != nil {
		return 0, err
	}
	free, err := r.meminfo("MemFree")
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, undefined(r.cfg.path(meminfoFilename), "MemTotal not positive")
	}
	return float64(total-free) / float64(total), nil
}

// meminfo reads a kB quantity from the meminfo record.
func (r *Reader) meminfo(key string) (int64, error) {
	name := r.cfg.path(meminfoFilename)
	v, err := measure(name, key)
	if err != nil {
		return 0, err
	}
	return atoi64(name, key, v)
}
