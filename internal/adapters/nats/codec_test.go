package natsadapter_test

import (
	"reflect"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	natsadapter "github.com/samirrijal/placesbridge/internal/adapters/nats"
	"github.com/samirrijal/placesbridge/internal/core/messages"
)

func sampleRequest() messages.FindAutocompletePredictionsRequest {
	return messages.FindAutocompletePredictionsRequest{
		Query: "kamppi",
		LocationBias: &messages.LatLngBounds{
			Southwest: messages.Point(60.1, 24.8),
			Northeast: messages.Point(60.3, 25.1),
		},
		Origin:       &messages.LatLng{Latitude: messages.Float64(60.17)},
		Countries:    []*string{messages.String("fi"), nil},
		TypeFilter:   []*int64{messages.Int64(2)},
		RefreshToken: messages.Bool(true),
	}
}

func sampleReply() messages.Reply {
	return messages.Reply{
		ID: "7",
		Result: []*messages.AutocompletePrediction{
			{
				DistanceMeters: messages.Int64(420),
				FullText:       "Kamppi Center, Urho Kekkosen katu, Helsinki",
				PlaceID:        "ChIJ-1",
				PlaceTypes:     []*int64{messages.Int64(3), messages.Int64(6)},
				PrimaryText:    "Kamppi Center",
				SecondaryText:  "Urho Kekkosen katu, Helsinki",
			},
			{
				FullText:   "Kamppi, Helsinki",
				PlaceID:    "ChIJ-2",
				PlaceTypes: []*int64{},
			},
		},
	}
}

func TestCodecFor(t *testing.T) {
	if _, ok := natsadapter.CodecFor(natsadapter.ContentTypeProtobuf).(natsadapter.ListCodec); !ok {
		t.Error("protobuf content type should select ListCodec")
	}
	for _, ct := range []string{"", "application/json", "text/plain"} {
		if _, ok := natsadapter.CodecFor(ct).(natsadapter.JSONCodec); !ok {
			t.Errorf("%q should select JSONCodec", ct)
		}
	}
}

func TestCodecs_Request(t *testing.T) {
	for _, codec := range []natsadapter.Codec{natsadapter.JSONCodec{}, natsadapter.ListCodec{}} {
		t.Run(codec.ContentType(), func(t *testing.T) {
			want := sampleRequest()
			data, err := codec.EncodeRequest(want)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := codec.DecodeRequest(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("request mismatch:\n got  %+v\n want %+v", got, want)
			}
		})
	}
}

func TestCodecs_Reply(t *testing.T) {
	for _, codec := range []natsadapter.Codec{natsadapter.JSONCodec{}, natsadapter.ListCodec{}} {
		t.Run(codec.ContentType(), func(t *testing.T) {
			want := sampleReply()
			data, err := codec.EncodeReply(want)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := codec.DecodeReply(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("reply mismatch:\n got  %+v\n want %+v", got, want)
			}
		})
	}
}

func TestListCodec_ErrorReply(t *testing.T) {
	codec := natsadapter.ListCodec{}
	data, err := codec.EncodeReply(messages.Reply{Error: &messages.Error{Code: messages.CodeAPIError, Message: "denied"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := codec.DecodeReply(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Result != nil {
		t.Errorf("expected no result, got %+v", got.Result)
	}
	if got.Error == nil || got.Error.Code != messages.CodeAPIError || got.Error.Message != "denied" {
		t.Errorf("unexpected error %+v", got.Error)
	}
}

func rawList(t *testing.T, l []any) []byte {
	t.Helper()
	lv, err := structpb.NewList(l)
	if err != nil {
		t.Fatalf("build list: %v", err)
	}
	data, err := proto.Marshal(lv)
	if err != nil {
		t.Fatalf("marshal list: %v", err)
	}
	return data
}

func TestListCodec_Malformed(t *testing.T) {
	codec := natsadapter.ListCodec{}
	if _, err := codec.DecodeRequest([]byte{0xff, 0x01}); err == nil {
		t.Error("expected error for garbage payload")
	}

	requests := map[string][]any{
		"fractional type filter": {"koulu", nil, nil, nil, nil, []any{2.7}, nil},
		"huge type filter":       {"koulu", nil, nil, nil, nil, []any{1e19}, nil},
		"string type filter":     {"koulu", nil, nil, nil, nil, []any{"2"}, nil},
		"short request":          {"koulu"},
	}
	for name, l := range requests {
		if _, err := codec.DecodeRequest(rawList(t, l)); err == nil {
			t.Errorf("%s: expected decode error", name)
		}
	}

	prediction := func(distance any, types []any) []byte {
		return rawList(t, []any{"1", []any{[]any{distance, "Full", "id", types, "Primary", "Secondary"}}, nil})
	}
	if _, err := codec.DecodeReply(prediction(12.5, []any{})); err == nil {
		t.Error("expected error for fractional distanceMeters")
	}
	if _, err := codec.DecodeReply(prediction(nil, []any{3.5})); err == nil {
		t.Error("expected error for fractional place type")
	}
	if _, err := codec.DecodeReply(prediction(nil, []any{"geocode"})); err == nil {
		t.Error("expected error for non-numeric place type")
	}
	got, err := codec.DecodeReply(prediction(float64(12), []any{float64(3), nil}))
	if err != nil {
		t.Fatalf("decode whole numbers: %v", err)
	}
	if p := got.Result[0]; *p.DistanceMeters != 12 || *p.PlaceTypes[0] != 3 || p.PlaceTypes[1] != nil {
		t.Errorf("unexpected prediction %+v", p)
	}
}
