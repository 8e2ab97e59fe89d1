package utils

import (
	"os"
	"strconv"
	"strings"
)

// PodConfig holds fine-grained component settings parsed from a single
// env variable in `key=value;key2=value2;flag` format, so one deployment
// knob can tune many toggles at once.
var PodConfig = ReadPodConfig("POD_CONFIG")

type podConfig struct {
	values map[string]string
}

func ReadPodConfig(envname string) podConfig {
	pc := podConfig{values: map[string]string{}}
	raw := os.Getenv(envname)
	if raw == "" {
		return pc
	}

	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kv := strings.SplitN(item, "=", 2)
		if len(kv) == 1 {
			// bare flag means enabled
			pc.values[kv[0]] = "true"
			continue
		}
		pc.values[kv[0]] = kv[1]
	}
	return pc
}

func (pc podConfig) GetString(key, defval string) string {
	if val, ok := pc.values[key]; ok {
		return val
	}
	return defval
}

func (pc podConfig) GetBool(key string, defval bool) bool {
	val, ok := pc.values[key]
	if !ok {
		return defval
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		LogWarn("key", key, "value", val, "invalid bool in pod config")
		return defval
	}
	return parsed
}

func (pc podConfig) GetInt(key string, defval int) int {
	val, ok := pc.values[key]
	if !ok {
		return defval
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		LogWarn("key", key, "value", val, "invalid int in pod config")
		return defval
	}
	return parsed
}

func (pc podConfig) GetInt64(key string, defval int64) int64 {
	val, ok := pc.values[key]
	if !ok {
		return defval
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		LogWarn("key", key, "value", val, "invalid int64 in pod config")
		return defval
	}
	return parsed
}
