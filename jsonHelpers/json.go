package jsonHelpers

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

func DesserializarJson[Para any](bytes []byte) (Para, error) {
	para := new(Para)
	err := json.Unmarshal(bytes, para)
	return *para, err
}

func DesserializarYaml[Para any](bytes []byte) (Para, error) {
	para := new(Para)
	err := yaml.Unmarshal(bytes, para)
	return *para, err
}
