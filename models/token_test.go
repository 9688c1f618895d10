package models

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitTokenValidity(t *testing.T) {
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	token := Token{
		AccessToken: "A21AAF",
		TokenType:   "Bearer",
		ExpiresIn:   32400, // 9 hours
		IssuedAt:    issued,
	}

	Convey("ExpiresAt is issue time plus lifetime", t, func() {
		So(token.ExpiresAt().Equal(issued.Add(9*time.Hour)), ShouldBeTrue)
	})

	Convey("Token is valid well inside its lifetime", t, func() {
		So(token.ValidAt(issued.Add(time.Minute)), ShouldBeTrue)
	})

	Convey("Token is valid just before the safety margin", t, func() {
		So(token.ValidAt(issued.Add(8*time.Hour-time.Second)), ShouldBeTrue)
	})

	Convey("Token is invalid at exactly one hour before expiry", t, func() {
		So(token.ValidAt(issued.Add(8*time.Hour)), ShouldBeFalse)
	})

	Convey("Token is invalid inside the safety margin", t, func() {
		So(token.ValidAt(issued.Add(8*time.Hour+time.Second)), ShouldBeFalse)
	})

	Convey("Token is invalid after expiry", t, func() {
		So(token.ValidAt(issued.Add(10*time.Hour)), ShouldBeFalse)
	})
}

func TestUnitCredentialsCacheKey(t *testing.T) {
	Convey("Cache key separates shop, app and environment", t, func() {
		live := Credentials{ClientID: "client-id", ClientSecret: "secret", ShopID: "shop-1"}
		sandbox := Credentials{ClientID: "client-id", ClientSecret: "secret", Sandbox: true, ShopID: "shop-1"}
		otherShop := Credentials{ClientID: "client-id", ClientSecret: "secret", ShopID: "shop-2"}

		So(live.CacheKey(), ShouldEqual, "shop-1:client-id:live")
		So(sandbox.CacheKey(), ShouldEqual, "shop-1:client-id:sandbox")
		So(otherShop.CacheKey(), ShouldNotEqual, live.CacheKey())
	})

	Convey("Cache key ignores the secret", t, func() {
		a := Credentials{ClientID: "client-id", ClientSecret: "old", ShopID: "shop-1"}
		b := Credentials{ClientID: "client-id", ClientSecret: "new", ShopID: "shop-1"}
		So(a.CacheKey(), ShouldEqual, b.CacheKey())
	})
}
