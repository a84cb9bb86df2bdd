package validator_test

import (
	"strings"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coerce済みの数値IDは文字列フィールドに戻る
func TestSchema_AddToCart_OK(t *testing.T) {
	got, errs := validator.AddToCart.Parse(map[string]any{
		"productId": float64(1),
		"quantity":  float64(2),
	})
	require.Nil(t, errs)
	assert.Equal(t, model.ID("1"), got.ProductID)
	assert.Equal(t, int64(2), got.Quantity)
}

func TestSchema_AddToCart_RuleMessages(t *testing.T) {
	_, errs := validator.AddToCart.Parse(map[string]any{
		"quantity": float64(0),
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Product is required"}, errs["productId"])
	assert.Equal(t, []string{"Quantity must be at least 1"}, errs["quantity"])
}

// 型違いはルールより優先して1件だけ
func TestSchema_TypeMismatch(t *testing.T) {
	_, errs := validator.AddToCart.Parse(map[string]any{
		"productId": "p-1",
		"quantity":  "many",
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Expected number, received string"}, errs["quantity"])
	assert.NotContains(t, errs, "productId")
}

// 埋め込み構造体のエラーは葉のJSON名で返す
func TestSchema_AddressCreate_Embedded(t *testing.T) {
	got, errs := validator.AddressCreate.Parse(map[string]any{
		"fullName":  "Ada",
		"street":    "1 Main",
		"state":     "CA",
		"zipCode":   float64(94016),
		"country":   "US",
		"isDefault": "on",
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"City is required"}, errs["city"])
	assert.Len(t, errs, 1)
	assert.Equal(t, "94016", got.ZipCode)
	assert.True(t, got.IsDefault)
}

func TestSchema_ProductUpdate_Partial(t *testing.T) {
	got, errs := validator.ProductUpdate.Parse(map[string]any{
		"id":    float64(3),
		"price": float64(10.5),
	})
	require.Nil(t, errs)
	assert.Equal(t, model.ID("3"), got.ID)
	require.NotNil(t, got.Price)
	assert.Equal(t, 10.5, *got.Price)
	assert.Nil(t, got.Name)
}

func TestSchema_ProductUpdate_RejectsNonPositivePrice(t *testing.T) {
	_, errs := validator.ProductUpdate.Parse(map[string]any{
		"id":    "3",
		"price": float64(-1),
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Price must be positive"}, errs["price"])
}

func TestSchema_Register_PasswordMismatch(t *testing.T) {
	_, errs := validator.Register.Parse(map[string]any{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "longenough",
		"confirmPassword": "different1",
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Passwords do not match"}, errs["confirmPassword"])
}

func TestSchema_Login_InvalidEmail(t *testing.T) {
	_, errs := validator.Login.Parse(map[string]any{
		"email":    "nope",
		"password": "x",
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Invalid email address"}, errs["email"])
}

// msgタグの無いルールは既定文言
func TestSchema_DefaultMessage(t *testing.T) {
	_, errs := validator.ProductCreate.Parse(map[string]any{
		"name":        "Lamp",
		"description": "Bright",
		"price":       float64(12),
		"category":    "home",
		"image":       "https://cdn.example.com/lamp.png",
		"stock":       float64(3),
		"rating":      float64(9),
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Must be less than or equal to 5"}, errs["rating"])
}

func TestSchema_OrderStatus_OneOf(t *testing.T) {
	_, errs := validator.OrderStatus.Parse(map[string]any{
		"id":     float64(7),
		"status": "lost",
	})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Invalid status"}, errs["status"])
}

func TestSchema_Empty(t *testing.T) {
	_, errs := validator.Empty.Parse(map[string]any{"anything": "goes"})
	assert.Nil(t, errs)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", validator.NormalizeEmail("  Ada@Example.COM "))
}

// mod:"trim" のメールは前後の空白を許す
func TestSchema_Login_TrimsEmail(t *testing.T) {
	in, errs := validator.Login.Parse(map[string]any{"email": "  ada@example.com ", "password": " pw "})
	require.Nil(t, errs)
	assert.Equal(t, "ada@example.com", in.Email)
	assert.Equal(t, " pw ", in.Password)
}

// 数値に見える文字列も文字列フィールドでは元の表記のまま
func TestSchema_ParseForm_KeepsRawStrings(t *testing.T) {
	raw := map[string]any{
		"fullName": "Ada",
		"street":   "1 Main",
		"city":     "Boston",
		"state":    "MA",
		"zipCode":  "02134",
		"country":  "US",
	}
	coerced := map[string]any{}
	for k, v := range raw {
		coerced[k] = v
	}
	coerced["zipCode"] = float64(2134)

	got, errs := validator.Shipping.ParseForm(raw, coerced)
	require.Nil(t, errs)
	assert.Equal(t, "02134", got.ZipCode)
	assert.Equal(t, "Ada, 1 Main, Boston, MA 02134, US", got.Line())
}

func TestSchema_ParseForm_LongAndExponentIDs(t *testing.T) {
	cases := []struct {
		raw     string
		coerced float64
	}{
		{"12345678901234567891", 12345678901234567891},
		{"1e3", 1000},
		{" 42 ", 42},
	}
	for _, tc := range cases {
		got, errs := validator.AddToCart.ParseForm(
			map[string]any{"productId": tc.raw, "quantity": "1"},
			map[string]any{"productId": tc.coerced, "quantity": float64(1)},
		)
		require.Nil(t, errs, tc.raw)
		assert.Equal(t, model.ID(strings.TrimSpace(tc.raw)), got.ProductID, tc.raw)
		assert.Equal(t, int64(1), got.Quantity, tc.raw)
	}
}
