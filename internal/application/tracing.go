package application

const tracerName = "github.com/VilnaCRM-Org/website-sub001/internal/application"
