package calculation

import "github.com/sirupsen/logrus"

var (
	_ Logger = (*logrus.Logger)(nil)
	_ Logger = (*logrus.Entry)(nil)
	_ Logger = NopLogger{}
)
