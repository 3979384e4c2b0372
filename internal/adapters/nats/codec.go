package natsadapter

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/samirrijal/placesbridge/internal/core/messages"
)

// ContentTypeProtobuf selects the positional structpb codec.
const ContentTypeProtobuf = "application/x-protobuf"

// Codec translates channel messages to and from NATS payloads.
type Codec interface {
	ContentType() string
	DecodeRequest(data []byte) (messages.FindAutocompletePredictionsRequest, error)
	EncodeReply(r messages.Reply) ([]byte, error)
	EncodeRequest(r messages.FindAutocompletePredictionsRequest) ([]byte, error)
	DecodeReply(data []byte) (messages.Reply, error)
}

// CodecFor picks the codec for a Content-Type header value.
func CodecFor(contentType string) Codec {
	if contentType == ContentTypeProtobuf {
		return ListCodec{}
	}
	return JSONCodec{}
}

// JSONCodec carries messages as JSON objects.
type JSONCodec struct{}

func (JSONCodec) ContentType() string { return "application/json" }

func (JSONCodec) DecodeRequest(data []byte) (messages.FindAutocompletePredictionsRequest, error) {
	var req messages.FindAutocompletePredictionsRequest
	err := json.Unmarshal(data, &req)
	return req, err
}

func (JSONCodec) EncodeReply(r messages.Reply) ([]byte, error) { return json.Marshal(r) }

func (JSONCodec) EncodeRequest(r messages.FindAutocompletePredictionsRequest) ([]byte, error) {
	return json.Marshal(r)
}

func (JSONCodec) DecodeReply(data []byte) (messages.Reply, error) {
	var r messages.Reply
	err := json.Unmarshal(data, &r)
	return r, err
}

// ListCodec carries messages as a protobuf ListValue holding the positional
// list form. A reply is [id, result, error] where result is a list of
// prediction lists and error is [code, message] or null.
type ListCodec struct{}

func (ListCodec) ContentType() string { return ContentTypeProtobuf }

func (ListCodec) DecodeRequest(data []byte) (messages.FindAutocompletePredictionsRequest, error) {
	l, err := unmarshalList(data)
	if err != nil {
		return messages.FindAutocompletePredictionsRequest{}, err
	}
	req, err := messages.FindAutocompletePredictionsRequestFromList(l)
	if err != nil {
		return messages.FindAutocompletePredictionsRequest{}, err
	}
	return *req, nil
}

func (ListCodec) EncodeRequest(r messages.FindAutocompletePredictionsRequest) ([]byte, error) {
	return marshalList(r.ToList())
}

func (ListCodec) EncodeReply(r messages.Reply) ([]byte, error) {
	var result, errv any
	if r.Result != nil {
		items := make([]any, len(r.Result))
		for i, p := range r.Result {
			if p != nil {
				items[i] = p.ToList()
			}
		}
		result = items
	}
	if r.Error != nil {
		errv = []any{r.Error.Code, r.Error.Message}
	}
	return marshalList([]any{r.ID, result, errv})
}

func (ListCodec) DecodeReply(data []byte) (messages.Reply, error) {
	l, err := unmarshalList(data)
	if err != nil {
		return messages.Reply{}, err
	}
	if len(l) != 3 {
		return messages.Reply{}, fmt.Errorf("reply list: want 3 fields, got %d", len(l))
	}
	var r messages.Reply
	r.ID, _ = l[0].(string)
	if items, ok := l[1].([]any); ok {
		r.Result = make([]*messages.AutocompletePrediction, len(items))
		for i, it := range items {
			pl, ok := it.([]any)
			if !ok {
				continue
			}
			if r.Result[i], err = messages.AutocompletePredictionFromList(pl); err != nil {
				return messages.Reply{}, fmt.Errorf("result %d: %w", i, err)
			}
		}
	}
	if e, ok := l[2].([]any); ok && len(e) == 2 {
		code, _ := e[0].(string)
		msg, _ := e[1].(string)
		r.Error = &messages.Error{Code: code, Message: msg}
	}
	return r, nil
}

func marshalList(l []any) ([]byte, error) {
	lv, err := structpb.NewList(l)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return proto.Marshal(lv)
}

func unmarshalList(data []byte) ([]any, error) {
	var lv structpb.ListValue
	if err := proto.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return lv.AsSlice(), nil
}
