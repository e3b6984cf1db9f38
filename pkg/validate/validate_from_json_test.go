package validate_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/intershop/pkg/validate"
)

const rawValidItem = `{"id":1,"title":"Laptop","description":"x","price":999.99,"img_path":"/img/laptop.png","stock":5}`

func TestValidateItemFromJSON_OK(t *testing.T) {
	t.Parallel()

	item, err := validate.ValidateItemFromJSON(context.Background(), validate.NewItemValidator(), []byte(rawValidItem))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 1 || item.Title != "Laptop" {
		t.Fatalf("decoded item wrong: %+v", item)
	}
}

func TestValidateItemFromJSON_UnknownField(t *testing.T) {
	t.Parallel()

	raw := strings.Replace(rawValidItem, `"stock":5`, `"stock":5,"color":"red"`, 1)
	_, err := validate.ValidateItemFromJSON(context.Background(), validate.NewItemValidator(), []byte(raw))
	if !errors.Is(err, validate.ErrInvalidItem) {
		t.Fatalf("unknown field must be ErrInvalidItem, got %v", err)
	}
}

func TestValidateItemFromJSON_TrailingData(t *testing.T) {
	t.Parallel()

	_, err := validate.ValidateItemFromJSON(context.Background(), validate.NewItemValidator(), []byte(rawValidItem+`{"id":2}`))
	if !errors.Is(err, validate.ErrInvalidItem) {
		t.Fatalf("trailing data must be ErrInvalidItem, got %v", err)
	}
}

func TestValidateJSONLStream_MixedLines(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		rawValidItem,
		"", // пустая строка пропускается
		`{"id":2,"title":"","price":1}`, // невалидный: пустой title
		`{"id":3,"title":"Tablet","description":"","price":399.99,"img_path":"","stock":2}`,
	}, "\n")

	var out bytes.Buffer
	res, err := validate.ValidateJSONLStream(context.Background(), validate.NewItemValidator(), strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("want 2 valid / 1 invalid, got %+v", res)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", got, out.String())
	}
}
