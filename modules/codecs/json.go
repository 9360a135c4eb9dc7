package codecs

import (
	"encoding/json"

	"github.com/vk/stockpile"
)

type jsonCodec struct{}

func (jsonCodec) Name() string                    { return "json" }
func (jsonCodec) Encode(v any) ([]byte, error)    { return json.Marshal(v) }
func (jsonCodec) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }

var _ = stockpile.Submit[Codec](Registry, jsonCodec{})
