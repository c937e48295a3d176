package parsing

import (
	"strconv"
	"strings"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/converting"
	"github.com/beevik/etree"
)

// ParseAmount drops the decimal separator and reads the rest as minor units,
// so "6538.00" becomes 653800. Amounts with other than two fractional digits
// are not scaled.
func ParseAmount(element *etree.Element) (schema.Amount, error) {
	value := text(element)
	if value == "" {
		return schema.Amount{}, elementError(element, ErrEmptyElement)
	}

	amount, err := strconv.ParseInt(strings.ReplaceAll(value, ".", ""), 10, 64)
	if err != nil {
		return schema.Amount{}, elementError(element, err)
	}

	var curCode *string
	if attribute := element.SelectAttr("CurCode"); attribute != nil {
		curCode = converting.PointerToValue(attribute.Value)
	}

	return schema.Amount{Amount: amount, CurCode: curCode}, nil
}

func parseChildAmount(parent *etree.Element, path string) (schema.Amount, error) {
	element, err := requiredChild(parent, path)
	if err != nil {
		return schema.Amount{}, err
	}
	return ParseAmount(element)
}

func parseTax(element *etree.Element) (schema.Tax, error) {
	amount, err := parseChildAmount(element, "./Amount")
	if err != nil {
		return schema.Tax{}, err
	}

	taxCode, err := requiredText(element, "./TaxCode")
	if err != nil {
		return schema.Tax{}, err
	}

	return schema.Tax{Amount: amount, TaxCode: taxCode}, nil
}

func parseTaxSummary(element *etree.Element) (schema.TaxSummary, error) {
	taxes := make([]schema.Tax, 0)
	for _, node := range element.FindElements("./Tax") {
		tax, err := parseTax(node)
		if err != nil {
			return schema.TaxSummary{}, err
		}
		taxes = append(taxes, tax)
	}

	summary := schema.TaxSummary{Taxes: taxes}

	if node := element.FindElement("./TotalTaxAmount"); node != nil {
		total, err := ParseAmount(node)
		if err != nil {
			return schema.TaxSummary{}, err
		}
		summary.TotalTaxAmount = &total
	}

	return summary, nil
}

func parsePrice(element *etree.Element) (schema.Price, error) {
	price := schema.Price{
		TaxSummary: schema.TaxSummary{Taxes: []schema.Tax{}},
	}

	if node := element.FindElement("./TaxSummary"); node != nil {
		summary, err := parseTaxSummary(node)
		if err != nil {
			return schema.Price{}, err
		}
		price.TaxSummary = summary
	}

	total, err := parseChildAmount(element, "./TotalAmount")
	if err != nil {
		return schema.Price{}, err
	}
	price.TotalAmount = total

	return price, nil
}

func parseChildPrice(parent *etree.Element, path string) (schema.Price, error) {
	element, err := requiredChild(parent, path)
	if err != nil {
		return schema.Price{}, err
	}
	return parsePrice(element)
}
