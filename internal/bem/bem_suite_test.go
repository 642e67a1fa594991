package bem_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBem(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Blade Element Suite")
}
